package request

type SetSiteModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=ecommerce basic"`
}
