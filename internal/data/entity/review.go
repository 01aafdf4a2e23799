package entity

const DefaultReviewerName = "Anonymous"

type Review struct {
	BaseSimple
	BusinessID   int64  `db:"business_id"`
	ReviewerName string `db:"reviewer_name"`
	Rating       int    `db:"rating"`
	Comment      string `db:"comment"`
}
