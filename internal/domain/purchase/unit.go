package purchase

// Unit defines the measurement unit an invoice line was bought in
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "ml"
	UnitBox        Unit = "cx"
	UnitPiece      Unit = "un"
)

// Units lists the accepted units in the order a form offers them
func Units() []Unit {
	return []Unit{UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitBox, UnitPiece}
}

// Valid reports whether u is one of the enumerated units
func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitBox, UnitPiece:
		return true
	default:
		return false
	}
}
