package types

// MenuDish is a single dish from a translated menu.
type MenuDish struct {
	Name           string   `json:"name"`
	EnglishName    string   `json:"english_name"`
	Description    string   `json:"description"`
	Pronunciation  string   `json:"pronunciation"`
	OriginalText   string   `json:"original_text"`
	Price          string   `json:"price,omitempty"`
	ConvertedPrice *float64 `json:"converted_price,omitempty"`
	ImageURLs      []string `json:"image_urls,omitempty"`
}

// MenuTranslation is the structured payload the backend answers with.
type MenuTranslation struct {
	Dishes            []MenuDish `json:"dishes"`
	SourceLanguage    string     `json:"source_language"`
	Country           string     `json:"country"`
	OriginalCurrency  string     `json:"original_currency,omitempty"`
	ExchangeRateToEUR *float64   `json:"exchange_rate_to_eur,omitempty"`
	TargetCurrency    string     `json:"target_currency"`
}

// TranslateEnvelope is the backend's JSON wrapper: {status, data|message}.
type TranslateEnvelope struct {
	Status  string           `json:"status"`
	Message string           `json:"message,omitempty"`
	Data    *MenuTranslation `json:"data,omitempty"`
}
