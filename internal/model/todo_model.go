package model

type Todo struct {
	ID       int64  `json:"id"`
	Contents string `json:"contents"`
	IsDone   bool   `json:"is_done"`
	UserID   int64  `json:"-"`
}
