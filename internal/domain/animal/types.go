package animal

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) String() string {
	return string(s)
}

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

func NewSex(v string) (Sex, error) {
	sex := Sex(v)
	if !sex.IsValid() {
		return "", ErrInvalidSex
	}
	return sex, nil
}

// Status is the lifecycle state of an inventory item. Deleted items stay
// in storage for referential integrity of recorded sales but are excluded
// from every listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusDeleted:
		return true
	default:
		return false
	}
}

func NewStatus(v string) (Status, error) {
	status := Status(v)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
