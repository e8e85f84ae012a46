package homework

// Status is the review state the API reports for a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known review status to its human-readable verdict.
// The set is fixed: a status outside this table is treated as invalid input.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the verdict text for the given status and whether the
// status is one of the known review states.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}
