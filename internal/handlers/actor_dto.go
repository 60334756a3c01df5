package handlers

import "movie-catalog/internal/services"

// ActorRequest is the body of POST /actors and PUT /actors/{id}.
type ActorRequest struct {
	Name    string `json:"name" example:"Tom"`
	Surname string `json:"surname" example:"Hardy"`
}

func (r ActorRequest) toInput() services.ActorInput {
	return services.ActorInput{
		Name:    r.Name,
		Surname: r.Surname,
	}
}

type ActorCreatedResponse struct {
	Message string `json:"message" example:"Actor added successfully"`
	ActorID uint   `json:"actor_id" example:"1"`
}
