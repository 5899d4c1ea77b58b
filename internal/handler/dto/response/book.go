package response

import (
	"time"

	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Image       string    `json:"image"`
	Quantity    int32     `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromBookRM(rm *readmodel.BookRM) *BookResponse {
	var resp BookResponse
	_ = copier.Copy(&resp, rm)
	resp.Image = rm.ImageURL
	return &resp
}

func FromBookRMs(rms []*readmodel.BookRM) []*BookResponse {
	resp := make([]*BookResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromBookRM(rm)
	}
	return resp
}
