package models

// WarningCode categorizes warnings by source file.
// W1xxx = deficit file, W2xxx = presidents file.
type WarningCode string

const (
	WarnDeficitRowSkipped    WarningCode = "W1001" // row could not be parsed and was dropped
	WarnDeficitValueMissing  WarningCode = "W1002" // fiscal year present but the percent-of-GDP cell is empty
	WarnPresidentRowSkipped  WarningCode = "W2001" // row has no name or no parseable took-office date
	WarnPresidentLeftUnknown WarningCode = "W2002" // left-office date could not be parsed (coerced to absent)
)

// Warning represents a non-fatal issue encountered while parsing raw inputs.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
