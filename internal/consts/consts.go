package consts

const (
	BOLTZMANN = 1.380649e-23 // Boltzmann constant (J/K)
	ROOMTEMP  = 300.0        // Reference temperature (K)
)
