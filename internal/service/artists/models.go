package artists

// RegisterRequest анкета для самостоятельной регистрации артиста
type RegisterRequest struct {
	Name      string
	Phone     string
	StageName string
	LineID    string
	Genre     string

	Instagram string
	TikTok    string
	YouTube   string
	Twitter   string

	VideoURL    string
	VideoLineID string

	Note string
}
