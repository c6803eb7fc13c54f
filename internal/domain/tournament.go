package domain

type Game struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Genre string `json:"genre"`
}

type RegistrationStatus string

const (
	RegistrationOpen   RegistrationStatus = "open"
	RegistrationClosed RegistrationStatus = "closed"
)

type Tournament struct {
	ID                 int32              `json:"id"`
	GameID             int32              `json:"game_id"`
	GameName           string             `json:"game_name,omitempty"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	StartDate          string             `json:"start_date"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	CreatedOn          string             `json:"created_on"`
}

type TournamentRegistration struct {
	ID           int32  `json:"id"`
	TournamentID int32  `json:"tournament_id"`
	UserID       int32  `json:"user_id"`
	Username     string `json:"username,omitempty"`
	RegisteredOn string `json:"registered_on"`
}
