// Package regression backs the regression demo: a small synthetic salary
// dataset and four fixed curves evaluated against it.
//
// Nothing is fitted. Each model is a closed-form function of years of
// experience; the package only evaluates those functions, scores them against
// the noisy samples (MAE, RMSE, R²) and serves their static descriptions.
//
// View holds one screen's state. Its dataset is generated once and kept until
// Regenerate is called, so switching models or toggling the details panel
// always compares curves against the same points.
package regression
