// Package planner implements the degree-planning analysis engine: prerequisite
// rule evaluation, dependency graph analysis, priority ranking, timeline
// estimation and risk assessment over an in-memory course catalog.
//
// All operations are pure functions over immutable inputs. A Session owns the
// shared read-only data (catalog, rules, requirement groups, policy) and may be
// used by many concurrent requests; each request supplies its own Ledger.
package planner
