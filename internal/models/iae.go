package models

// IAECategory maps an IAE sector code to its typology value (1-1000). The
// first two characters of a code denote the broad sector; the full code the
// sub-sector.
type IAECategory struct {
	ID             int    `json:"id"`
	IAECode        string `json:"iae_code"`
	ValorTipologia int    `json:"valor_tipologia"`
}
