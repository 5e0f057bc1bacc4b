package compr_flow

// isentropic exponent of air, -
const DefaultGamma = 1.4

// Air is the gas every package-level function evaluates with.
var Air = Gas{Gamma: DefaultGamma}
