package coupon

import "github.com/m04kA/Fairway-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
