package core

// Params is the immutable physical parameter pack. A pack is built once
// by Default or With and shared read-only by every consumer; nothing in
// the kernel mutates it after construction.
type Params struct {
	// Delayed-neutron data, one entry per precursor group.
	Beta       []float64 `yaml:"beta"`        // group fractions
	DecayConst []float64 `yaml:"decay_const"` // group decay constants, 1/s

	// GenTime is the prompt neutron generation time Λ in seconds. It is
	// stretched from the physical ~2e-5 s so the prompt mode stays inside
	// the RK4 stability region at the dt_max_rk4 step ceiling.
	GenTime float64 `yaml:"gen_time"`

	// Temperature feedback coefficients (Δk/k per K) and references.
	AlphaFuel float64 `yaml:"alpha_fuel"`
	TfRef     float64 `yaml:"tf_ref"`
	AlphaMod  float64 `yaml:"alpha_mod"`
	TcRef     float64 `yaml:"tc_ref"`

	// Control rod bank and scram.
	RodWorthMax    float64 `yaml:"rod_worth_max"`   // Δk/k at full withdrawal
	ShutdownMargin float64 `yaml:"shutdown_margin"` // Δk/k held below critical at rod=0
	ScramWorth     float64 `yaml:"scram_worth"`     // Δk/k, negative
	ScramTau       float64 `yaml:"scram_tau"`       // insertion time constant, s

	// Thermal-hydraulics.
	PowerNominal float64 `yaml:"power_nominal"`   // W at P=1
	MassFuel     float64 `yaml:"mass_fuel"`       // kg
	CpFuel       float64 `yaml:"cp_fuel"`         // J/(kg K)
	MassCoolant  float64 `yaml:"mass_coolant"`    // kg
	CpCoolant    float64 `yaml:"cp_coolant"`      // J/(kg K)
	HFuelCoolant float64 `yaml:"h_fuel_coolant"`  // W/K
	HCoolPumpOn  float64 `yaml:"h_cool_pump_on"`  // heat-sink W/K, forced circulation
	HCoolPumpOff float64 `yaml:"h_cool_pump_off"` // heat-sink W/K, natural circulation
	TcInlet      float64 `yaml:"tc_inlet"`        // K

	// Iodine/xenon chain, normalized so fission rate equals P.
	YieldI        float64 `yaml:"yield_i"`         // I-135 fission yield
	YieldXe       float64 `yaml:"yield_xe"`        // direct Xe-135 fission yield
	DecayI        float64 `yaml:"decay_i"`         // 1/s
	DecayXe       float64 `yaml:"decay_xe"`        // 1/s
	XeBurnNominal float64 `yaml:"xe_burn_nominal"` // absorption rate at P=1, 1/s
	XenonWorth    float64 `yaml:"xenon_worth"`     // Δk/k per unit Xe-135
	XenonSpeedup  float64 `yaml:"xenon_speedup"`   // time compression for training

	// Numeric safety bounds.
	DtMin      float64 `yaml:"dt_min"`
	DtMaxEuler float64 `yaml:"dt_max_euler"`
	DtMaxRK4   float64 `yaml:"dt_max_rk4"`
	PMin       float64 `yaml:"p_min"`
	PMax       float64 `yaml:"p_max"`
	TempMin    float64 `yaml:"temp_min"`
	TempMax    float64 `yaml:"temp_max"`
}

// Default returns the reference parameter pack: a 3000 MWt PWR-like core
// with U-235 delayed-neutron data and equilibrium-xenon worth around
// -2800 pcm at nominal power.
func Default() Params {
	return Params{
		Beta:       []float64{0.000215, 0.001424, 0.001274, 0.002568, 0.000748, 0.000273},
		DecayConst: []float64{0.0124, 0.0305, 0.111, 0.301, 1.14, 3.01},
		GenTime:    2.0e-3,

		AlphaFuel: -2.5e-5,
		TfRef:     900.0,
		AlphaMod:  -5.0e-5,
		TcRef:     590.0,

		RodWorthMax:    0.065,
		ShutdownMargin: 0.02,
		ScramWorth:     -0.09,
		ScramTau:       0.8,

		PowerNominal: 3.0e9,
		MassFuel:     1.0e5,
		CpFuel:       300.0,
		MassCoolant:  2.5e5,
		CpCoolant:    5500.0,
		HFuelCoolant: 1.0e7,
		HCoolPumpOn:  1.0e8,
		HCoolPumpOff: 5.0e6,
		TcInlet:      565.0,

		YieldI:        0.063,
		YieldXe:       0.0025,
		DecayI:        2.87e-5,
		DecayXe:       2.09e-5,
		XeBurnNominal: 3.5e-5,
		XenonWorth:    2.4e-5,
		XenonSpeedup:  1.0,

		DtMin:      1e-6,
		DtMaxEuler: 0.01,
		DtMaxRK4:   0.05,
		PMin:       1e-9,
		PMax:       12.0,
		TempMin:    280.0,
		TempMax:    3300.0,
	}
}

// With returns a validated copy of the default pack after applying the
// given overrides. The receiverless copy keeps Default immutable; callers
// customizing a pack never touch a shared instance.
func With(override func(*Params)) (Params, error) {
	p := Default()
	p.Beta = append([]float64(nil), p.Beta...)
	p.DecayConst = append([]float64(nil), p.DecayConst...)
	if override != nil {
		override(&p)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// BetaTotal is the total delayed-neutron fraction Σβ_i.
func (p *Params) BetaTotal() float64 {
	sum := 0.0
	for _, b := range p.Beta {
		sum += b
	}
	return sum
}

// HCool selects the pump-dependent heat-sink coefficient.
func (p *Params) HCool(pumpOn bool) float64 {
	if pumpOn {
		return p.HCoolPumpOn
	}
	return p.HCoolPumpOff
}

// Validate checks the pack for structural and physical plausibility.
// It returns a *ValidationError wrapping ErrInvalidParams on the first
// violation found.
func (p *Params) Validate() error {
	if len(p.Beta) != PrecursorGroups || len(p.DecayConst) != PrecursorGroups {
		return validationErr(ErrInvalidParams, "beta/decay_const groups",
			float64(len(p.Beta)), "fractions and decay constants must both have 6 groups")
	}
	for i, b := range p.Beta {
		if b <= 0 {
			return validationErr(ErrInvalidParams, "beta", b,
				"group fraction must be positive")
		}
		if p.DecayConst[i] <= 0 {
			return validationErr(ErrInvalidParams, "decay_const", p.DecayConst[i],
				"group decay constant must be positive")
		}
	}
	if p.GenTime <= 0 {
		return validationErr(ErrInvalidParams, "gen_time", p.GenTime,
			"prompt generation time must be positive")
	}
	if p.RodWorthMax <= 0 {
		return validationErr(ErrInvalidParams, "rod_worth_max", p.RodWorthMax,
			"rod worth must be positive")
	}
	if p.ShutdownMargin < 0 {
		return validationErr(ErrInvalidParams, "shutdown_margin", p.ShutdownMargin,
			"shutdown margin cannot be negative")
	}
	if p.ScramWorth >= 0 {
		return validationErr(ErrInvalidParams, "scram_worth", p.ScramWorth,
			"scram worth must be negative")
	}
	if p.ScramTau <= 0 {
		return validationErr(ErrInvalidParams, "scram_tau", p.ScramTau,
			"scram time constant must be positive")
	}
	positive := []struct {
		name string
		val  float64
	}{
		{"power_nominal", p.PowerNominal},
		{"mass_fuel", p.MassFuel},
		{"cp_fuel", p.CpFuel},
		{"mass_coolant", p.MassCoolant},
		{"cp_coolant", p.CpCoolant},
		{"h_fuel_coolant", p.HFuelCoolant},
		{"h_cool_pump_on", p.HCoolPumpOn},
		{"h_cool_pump_off", p.HCoolPumpOff},
		{"tc_inlet", p.TcInlet},
	}
	for _, q := range positive {
		if q.val <= 0 {
			return validationErr(ErrInvalidParams, q.name, q.val,
				"thermal parameter must be positive")
		}
	}
	if p.YieldI < 0 || p.YieldXe < 0 {
		return validationErr(ErrInvalidParams, "yield", p.YieldI,
			"fission yields cannot be negative")
	}
	if p.DecayI <= 0 || p.DecayXe <= 0 {
		return validationErr(ErrInvalidParams, "decay_i/decay_xe", p.DecayI,
			"poison decay constants must be positive")
	}
	if p.XeBurnNominal < 0 || p.XenonWorth < 0 {
		return validationErr(ErrInvalidParams, "xenon", p.XenonWorth,
			"xenon burnout and worth cannot be negative")
	}
	if p.XenonSpeedup <= 0 {
		return validationErr(ErrInvalidParams, "xenon_speedup", p.XenonSpeedup,
			"xenon speedup must be positive")
	}
	if p.DtMin <= 0 || p.DtMin >= p.DtMaxEuler || p.DtMaxEuler > p.DtMaxRK4 {
		return validationErr(ErrInvalidParams, "dt bounds", p.DtMin,
			"require 0 < dt_min < dt_max_euler <= dt_max_rk4")
	}
	if p.PMin < 0 || p.PMin >= p.PMax {
		return validationErr(ErrInvalidParams, "power bounds", p.PMin,
			"require 0 <= p_min < p_max")
	}
	if p.TempMin <= 0 || p.TempMin >= p.TempMax {
		return validationErr(ErrInvalidParams, "temperature bounds", p.TempMin,
			"require 0 < temp_min < temp_max")
	}
	return nil
}
