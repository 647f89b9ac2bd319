// Package stats turns raw beverage logs into the hydration rollups shown on the
// dashboard: intake by hour for today, by day for the last week, by week for the
// last month, and the share of every beverage type. It also holds the goal
// progress and goal recommendation calculators.
//
// Everything here is a pure function of its arguments. The reference time is
// always passed in explicitly and its location decides calendar-day boundaries.
package stats
