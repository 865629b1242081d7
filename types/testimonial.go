package types

type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Product string `json:"product"`
}
