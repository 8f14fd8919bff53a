// Package dataset loads and prepares overtaking samples.
//
// Each CSV row holds three raw measurements and an outcome:
//
//	initialSeparation,overtakingSpeed,oncomingSpeed,TRUE
//
// Features are normalized into roughly [0, 1] by fixed maxima (1000 m, 100
// and 100 speed units) and outcomes are encoded as soft one-hot targets with
// 0.99 for the true class and 0.01 elsewhere.
package dataset
