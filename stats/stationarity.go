package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goeda/timeseries"
)

// ADFOptions configures the augmented Dickey-Fuller test.
type ADFOptions struct {
	// MaxLag is the maximum number of lagged differences. A negative value
	// selects ceil(12 * (n/100)^(1/4)), capped at n/2 - 2.
	MaxLag int
	// AutoLag selects the lag by information criterion: "aic" or "bic".
	// An empty value uses MaxLag as is.
	AutoLag string
}

// DefaultADFOptions returns the default ADF configuration.
func DefaultADFOptions() *ADFOptions {
	return &ADFOptions{
		MaxLag:  -1,
		AutoLag: "aic",
	}
}

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int                // Lagged differences used
	NObs         int                // Observations in the final regression
	CriticalVals map[string]float64 // Critical values at 1%, 5%, 10%
	ICBest       float64            // Best information criterion, when AutoLag is set
	IsStationary bool
}

// CriticalLevels lists the keys of ADFResult.CriticalVals in print order.
var CriticalLevels = []string{"1%", "5%", "10%"}

// ADF performs the Augmented Dickey-Fuller test for a unit root with a
// constant term:
//
//	dy_t = alpha + beta*y_{t-1} + sum(gamma_i * dy_{t-i}) + e_t
//
// The null hypothesis is that the series has a unit root (beta = 0). If the
// p-value is below 0.05 the null is rejected and the series is stationary.
func ADF(series *timeseries.Series, opts *ADFOptions) (*ADFResult, error) {
	if opts == nil {
		opts = DefaultADFOptions()
	}

	x := series.Values
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}
	if series.MissingCount() > 0 {
		return nil, fmt.Errorf("%w: adf", ErrMissingValues)
	}
	if series.IsConstant() {
		return nil, ErrConstantSeries
	}

	// Upper bound keeps at least as many observations as regressors.
	limit := n/2 - 2
	maxLag := opts.MaxLag
	if maxLag < 0 {
		maxLag = min(int(math.Ceil(12*math.Pow(float64(n)/100, 0.25))), limit)
		if maxLag < 0 {
			return nil, fmt.Errorf("%w: sample size %d is too short for the test", ErrInsufficientData, n)
		}
	} else if maxLag > limit {
		return nil, fmt.Errorf("%w: maxlag %d must be at most %d for %d observations",
			ErrInsufficientData, maxLag, limit, n)
	}

	diff := series.Diff().Values

	lags := maxLag
	icBest := math.NaN()
	if opts.AutoLag != "" {
		// Every candidate is fitted on the sample of the largest lag so the
		// criteria are comparable.
		icBest = math.Inf(1)
		for lag := 0; lag <= maxLag; lag++ {
			fit, err := ols(adfDesign(x, diff, lag, maxLag))
			if err != nil {
				continue
			}
			ic := fit.aic()
			if opts.AutoLag == "bic" {
				ic = fit.bic()
			}
			if ic < icBest {
				icBest, lags = ic, lag
			}
		}
		if math.IsInf(icBest, 1) {
			return nil, fmt.Errorf("%w: no lag order could be fitted", ErrDegenerateRegression)
		}
	}

	fit, err := ols(adfDesign(x, diff, lags, lags))
	if err != nil {
		return nil, err
	}

	stat := fit.coeffs[1] / fit.stdErrors[1]
	if math.IsNaN(stat) || math.IsInf(stat, 0) {
		return nil, fmt.Errorf("%w: test statistic is %v", ErrDegenerateRegression, stat)
	}

	nObs := fit.n
	pValue := mackinnonPValue(stat)

	return &ADFResult{
		Statistic:    stat,
		PValue:       pValue,
		Lags:         lags,
		NObs:         nObs,
		CriticalVals: mackinnonCriticalValues(nObs),
		ICBest:       icBest,
		IsStationary: pValue < 0.05,
	}, nil
}

// adfDesign builds the regression of dy_t on [1, y_{t-1}, dy_{t-1}..dy_{t-lag}]
// for t from start to the end of the differenced series. The level column
// is centered on its sample mean, which moves only the intercept.
func adfDesign(x, diff []float64, lag, start int) (*mat.Dense, *mat.VecDense) {
	rows := len(diff) - start
	cols := 2 + lag
	design := mat.NewDense(rows, cols, nil)
	y := mat.NewVecDense(rows, nil)

	level := 0.0
	for t := start; t < len(diff); t++ {
		level += x[t]
	}
	if rows > 0 {
		level /= float64(rows)
	}

	for i := 0; i < rows; i++ {
		t := i + start
		y.SetVec(i, diff[t])
		design.Set(i, 0, 1)
		design.Set(i, 1, x[t]-level)
		for j := 1; j <= lag; j++ {
			design.Set(i, 1+j, diff[t-j])
		}
	}
	return design, y
}

type olsFit struct {
	coeffs    []float64
	stdErrors []float64
	ssr       float64
	n, k      int
}

// ols performs ordinary least squares regression through a QR factorization
// of X. The coefficient covariance is s2 * R^-1 R^-T.
func ols(x *mat.Dense, y *mat.VecDense) (*olsFit, error) {
	n, k := x.Dims()
	if n <= k {
		return nil, fmt.Errorf("%w: %d observations for %d regressors", ErrInsufficientData, n, k)
	}

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateRegression, err)
	}

	var r mat.Dense
	qr.RTo(&r)
	var rInv mat.Dense
	if err := rInv.Inverse(r.Slice(0, k, 0, k)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateRegression, err)
	}

	var resid mat.VecDense
	resid.MulVec(x, &beta)
	resid.SubVec(y, &resid)
	ssr := mat.Dot(&resid, &resid)

	s2 := ssr / float64(n-k)
	coeffs := make([]float64, k)
	stdErrors := make([]float64, k)
	for i := 0; i < k; i++ {
		coeffs[i] = beta.AtVec(i)
		row := rInv.RawRowView(i)
		stdErrors[i] = math.Sqrt(s2 * floats.Dot(row, row))
	}

	return &olsFit{
		coeffs:    coeffs,
		stdErrors: stdErrors,
		ssr:       ssr,
		n:         n,
		k:         k,
	}, nil
}

// logLik is the Gaussian log-likelihood of the fit.
func (f *olsFit) logLik() float64 {
	n := float64(f.n)
	return -n / 2 * (math.Log(2*math.Pi) + math.Log(f.ssr/n) + 1)
}

func (f *olsFit) aic() float64 {
	return -2*f.logLik() + 2*float64(f.k)
}

func (f *olsFit) bic() float64 {
	return -2*f.logLik() + float64(f.k)*math.Log(float64(f.n))
}

// MacKinnon (1994) response surface for the constant-only, single series
// case: polynomial coefficients of the normal quantile in the statistic.
var (
	tauMax     = 2.74
	tauMin     = -18.83
	tauStar    = -1.61
	tauSmallP  = []float64{2.1659, 1.4412, 0.038269}
	tauLargeP  = []float64{1.7339, 0.93202, -0.12745, -0.010368}
	tauCrit    = [3][4]float64{{-3.43035, -6.5393, -16.786, -79.433}, {-2.86154, -2.8903, -4.234, -40.040}, {-2.56677, -1.5384, -2.809, 0}}
	unitNormal = distuv.UnitNormal
)

// mackinnonPValue approximates the p-value of an ADF statistic using
// MacKinnon's (1994) regression surface.
func mackinnonPValue(stat float64) float64 {
	switch {
	case stat > tauMax:
		return 1
	case stat < tauMin:
		return 0
	}
	coef := tauLargeP
	if stat <= tauStar {
		coef = tauSmallP
	}
	return unitNormal.CDF(polyval(coef, stat))
}

// mackinnonCriticalValues returns MacKinnon's (2010) finite sample critical
// values for nobs observations.
func mackinnonCriticalValues(nobs int) map[string]float64 {
	crit := make(map[string]float64, len(CriticalLevels))
	for i, level := range CriticalLevels {
		crit[level] = polyval(tauCrit[i][:], 1/float64(nobs))
	}
	return crit
}

// polyval evaluates c[0] + c[1]*x + c[2]*x^2 + ...
func polyval(c []float64, x float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}
