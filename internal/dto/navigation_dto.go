package dto

// NavigationRequest is sent by the client router after every in-app
// transition, once the new page has set its title.
type NavigationRequest struct {
	Path  string `json:"path" validate:"required,startswith=/,max=2048"`
	Title string `json:"title" validate:"max=300"`
}

type TrackEventRequest struct {
	Name   string                 `json:"name" validate:"required,max=40"`
	Params map[string]interface{} `json:"params"`
}

type ConsentRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted declined"`
}

type ConsentResponse struct {
	Decision string `json:"decision"`
	Tracking bool   `json:"tracking"`
}
