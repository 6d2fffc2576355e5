package client

import "github.com/SamratSK/better-bites/client/internal/types"

// Aliases so SDK consumers never import internal packages.
type (
	Meal                  = types.Meal
	Water                 = types.Water
	Activity              = types.Activity
	Summary               = types.Summary
	Profile               = types.Profile
	Goals                 = types.Goals
	Measurement           = types.Measurement
	Streak                = types.Streak
	Report                = types.Report
	ReportShare           = types.ReportShare
	FlaggedItem           = types.FlaggedItem
	AdminCounts           = types.AdminCounts
	AdminOverview         = types.AdminOverview
	CreateMealRequest     = types.CreateMealRequest
	CreateWaterRequest    = types.CreateWaterRequest
	CreateActivityRequest = types.CreateActivityRequest
)
