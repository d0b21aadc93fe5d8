package numo

import (
	"errors"
	"math"
)

func arity(name string, want int, args []float64) error {
	if len(args) != want {
		return errors.New(name + ": wrong number of arguments")
	}
	return nil
}

func fnAbs(args ...float64) (float64, error) {
	if err := arity("abs", 1, args); err != nil {
		return 0, err
	}
	return math.Abs(args[0]), nil
}

func fnSqrt(args ...float64) (float64, error) {
	if err := arity("sqrt", 1, args); err != nil {
		return 0, err
	}
	if args[0] < 0 {
		return 0, errors.New("sqrt: negative argument")
	}
	return math.Sqrt(args[0]), nil
}

func fnCbrt(args ...float64) (float64, error) {
	if err := arity("cbrt", 1, args); err != nil {
		return 0, err
	}
	return math.Cbrt(args[0]), nil
}

func fnPow(args ...float64) (float64, error) {
	if err := arity("pow", 2, args); err != nil {
		return 0, err
	}
	if math.Abs(args[1]) > maxExponent {
		return 0, errors.New("pow: exponent too large")
	}
	return math.Pow(args[0], args[1]), nil
}

func fnMin(args ...float64) (float64, error) {
	if len(args) == 0 {
		return 0, errors.New("min: at least one argument required")
	}
	result := args[0]
	for _, v := range args[1:] {
		result = math.Min(result, v)
	}
	return result, nil
}

func fnMax(args ...float64) (float64, error) {
	if len(args) == 0 {
		return 0, errors.New("max: at least one argument required")
	}
	result := args[0]
	for _, v := range args[1:] {
		result = math.Max(result, v)
	}
	return result, nil
}

func fnRound(args ...float64) (float64, error) {
	if err := arity("round", 1, args); err != nil {
		return 0, err
	}
	return math.Round(args[0]), nil
}

func fnFloor(args ...float64) (float64, error) {
	if err := arity("floor", 1, args); err != nil {
		return 0, err
	}
	return math.Floor(args[0]), nil
}

func fnCeil(args ...float64) (float64, error) {
	if err := arity("ceil", 1, args); err != nil {
		return 0, err
	}
	return math.Ceil(args[0]), nil
}

func fnLog(args ...float64) (float64, error) {
	if err := arity("log", 1, args); err != nil {
		return 0, err
	}
	if args[0] <= 0 {
		return 0, errors.New("log: non-positive argument")
	}
	return math.Log10(args[0]), nil
}

func fnLn(args ...float64) (float64, error) {
	if err := arity("ln", 1, args); err != nil {
		return 0, err
	}
	if args[0] <= 0 {
		return 0, errors.New("ln: non-positive argument")
	}
	return math.Log(args[0]), nil
}

func fnExp(args ...float64) (float64, error) {
	if err := arity("exp", 1, args); err != nil {
		return 0, err
	}
	if math.Abs(args[0]) > maxExponent {
		return 0, errors.New("exp: argument too large")
	}
	return math.Exp(args[0]), nil
}

func fnSin(args ...float64) (float64, error) {
	if err := arity("sin", 1, args); err != nil {
		return 0, err
	}
	return math.Sin(args[0]), nil
}

func fnCos(args ...float64) (float64, error) {
	if err := arity("cos", 1, args); err != nil {
		return 0, err
	}
	return math.Cos(args[0]), nil
}

func fnTan(args ...float64) (float64, error) {
	if err := arity("tan", 1, args); err != nil {
		return 0, err
	}
	return math.Tan(args[0]), nil
}

func init() {
	RegisterFunction("abs", fnAbs)
	RegisterFunction("sqrt", fnSqrt)
	RegisterFunction("cbrt", fnCbrt)
	RegisterFunction("pow", fnPow)
	RegisterFunction("min", fnMin)
	RegisterFunction("max", fnMax)
	RegisterFunction("round", fnRound)
	RegisterFunction("floor", fnFloor)
	RegisterFunction("ceil", fnCeil)
	RegisterFunction("log", fnLog)
	RegisterFunction("ln", fnLn)
	RegisterFunction("exp", fnExp)
	RegisterFunction("sin", fnSin)
	RegisterFunction("cos", fnCos)
	RegisterFunction("tan", fnTan)
}
