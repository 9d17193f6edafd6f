package entity

type Location struct {
	Base
	State string `db:"state"`
}
