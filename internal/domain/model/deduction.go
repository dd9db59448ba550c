package model

import "strconv"

// DeductionSlot identifies a deduction column on a judging sheet. The final
// slot of a discipline conventionally carries the landing deduction and
// renders as the constant label "L" so clients need no discipline logic.
type DeductionSlot struct {
	Number  int
	Landing bool
}

// MarshalJSON renders landing slots as the string "L" and every other slot as
// its plain slot number, preserving the numeric JSON type for pass-through.
func (s DeductionSlot) MarshalJSON() ([]byte, error) {
	if s.Landing {
		return []byte(`"L"`), nil
	}
	return strconv.AppendInt(nil, int64(s.Number), 10), nil
}
