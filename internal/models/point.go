package models

// UserPoint is the balance snapshot of a single user.
// A user that was never written reads as the zero balance.
type UserPoint struct {
	ID           int64 `json:"id"`
	Point        int64 `json:"point"`
	UpdateMillis int64 `json:"updateMillis"`
}

func EmptyUserPoint(id int64) UserPoint { return UserPoint{ID: id} }
