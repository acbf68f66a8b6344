// Package statistics provides the log-normal distribution model used to
// map raw page-load timings onto a bounded score.
//
// Real-world timing distributions are unbounded and heavily right-skewed,
// so a plain linear scale either wastes most of its range on outliers or
// saturates immediately. A log-normal curve fitted to two calibration
// anchors — the observed median and the point of diminishing returns —
// gives a smooth, skew-aware mapping: the complementary percentile
// 1 − CDF(x) lands in [0,1], with faster measurements scoring higher.
//
// The model is derived once from its anchors and is immutable; it is safe
// to share across any number of concurrent scoring calls.
package statistics
