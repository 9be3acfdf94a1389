package response

import "corral-store/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}
