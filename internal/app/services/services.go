package services

// Services defined in this package:
// - PlanningService: eligibility checks and degree plan composition
// - CatalogService: read-only course catalog lookups
//
// Both are backed by one shared planner.Session built at startup from the
// database; only student ledgers are fetched per request.
