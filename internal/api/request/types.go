package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PlaceTileRequest is the request body for staging a tile on a cell
type PlaceTileRequest struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	TileID string `json:"tile_id"`
}

// AssignBlankRequest is the request body for assigning a blank's letter
type AssignBlankRequest struct {
	TileID string `json:"tile_id"`
	Letter string `json:"letter"`
}
