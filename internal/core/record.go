package core

// Record is a flattened snapshot taken during a scripted run. Records are
// log output only; they are never fed back into a model.
type Record struct {
	T      float64 `json:"t"`
	P      float64 `json:"p"`
	Tf     float64 `json:"tf"`
	Tc     float64 `json:"tc"`
	Rho    float64 `json:"rho"`
	Rod    float64 `json:"rod"`
	PumpOn bool    `json:"pump_on"`
	Scram  bool    `json:"scram"`
}

// Snapshot flattens a state and its applied controls into a record.
func Snapshot(s State, rho float64, c Controls) Record {
	return Record{
		T:      s.T,
		P:      s.P,
		Tf:     s.Tf,
		Tc:     s.Tc,
		Rho:    rho,
		Rod:    c.Rod,
		PumpOn: c.PumpOn,
		Scram:  c.Scram,
	}
}
