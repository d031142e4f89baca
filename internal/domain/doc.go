// Package domain computes and renders summaries of a daily weather table.
//
// # Input
//
// A [Table] is the parsed form of a comma-delimited file:
//
//	date,min,max
//	2021-07-06,59,86
//	2021-07-07,57,90
//
// Dates are ISO-8601 strings kept as written. Temperatures are whole degrees
// Fahrenheit and are converted to Celsius before any aggregation.
//
// # Rounding
//
// Every Celsius value shown to a user is rounded to one decimal place with
// round-half-to-even applied to the exact binary value ([RoundTenths]). The
// overview averages are computed from already-rounded daily values and then
// rounded again, so (15.0 + 13.9) / 2 renders as 14.4: the float sum lands a
// hair below 14.45.
//
// # Extremes
//
// [FindMin] and [FindMax] return the last index when the extreme value
// repeats. The overview reports the date of that last occurrence.
//
// # Formatting
//
// [FormatTemperature] never rounds. Integers render bare ("20°C"), floats
// always show a fractional digit ("15.0°C").
package domain
