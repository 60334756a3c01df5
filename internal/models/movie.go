package models

type Movie struct {
	ID          uint    `gorm:"primaryKey" json:"id" example:"1"`
	Title       string  `gorm:"not null" json:"title" example:"Inception"`
	Year        int     `gorm:"not null" json:"year" example:"2010"`
	Director    string  `gorm:"not null" json:"director" example:"Nolan"`
	Description string  `gorm:"not null;default:''" json:"description" example:"A thief who steals corporate secrets through dream-sharing technology"`
	Actors      []Actor `gorm:"many2many:movie_actor;" json:"actors,omitempty"`
}

func (Movie) TableName() string {
	return "movie"
}

// MovieActor is a row of the association table linking movies and actors.
// The pair is the primary key, so a link can exist at most once.
type MovieActor struct {
	MovieID uint `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	ActorID uint `gorm:"primaryKey;autoIncrement:false" json:"actor_id"`
}

func (MovieActor) TableName() string {
	return "movie_actor"
}

// LegacyMovie is a row of the earliest schema, where actors were a free-text
// column and there was no director. It is only accepted as an import format.
type LegacyMovie struct {
	Title    string `json:"title" example:"Heat"`
	Year     int    `json:"year" example:"1995"`
	Actors   string `json:"actors" example:"Al Pacino, Robert De Niro"`
	Director string `json:"director,omitempty" example:"Michael Mann"`
}

type ImportResult struct {
	Imported int      `json:"imported" example:"2"`
	Skipped  int      `json:"skipped" example:"0"`
	MovieIDs []uint   `json:"movie_ids"`
	Errors   []string `json:"errors,omitempty"`
}
