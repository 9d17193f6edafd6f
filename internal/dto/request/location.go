package request

type LocationRequest struct {
	State string `json:"state" validate:"required,min=1,max=250"`
}
