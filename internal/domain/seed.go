package domain

// SeedResult informa o resultado da carga de dados de demonstração
type SeedResult struct {
	Seeded         bool   `json:"seeded"`
	Message        string `json:"message"`
	Users          int    `json:"users"`
	Influencers    int    `json:"influencers"`
	Campaigns      int    `json:"campaigns"`
	Collaborations int    `json:"collaborations"`
}
