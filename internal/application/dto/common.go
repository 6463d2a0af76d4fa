package dto

import "encoding/json"

// Numeric acepta en JSON un número o un string numérico y conserva el texto
// crudo para que el caso de uso valide el formato (precio, cantidad inicial).
type Numeric string

// UnmarshalJSON implementa la tolerancia string-o-número.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	if string(b) == "null" {
		*n = ""
		return nil
	}
	*n = Numeric(b)
	return nil
}

func (n Numeric) String() string { return string(n) }

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
