package models

import "time"

// IST is the fixed timezone used for attempt timestamps and report windows.
var IST = time.FixedZone("IST", 5*3600+30*60)
