package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(err)
	}
}

// force the timezone to match the scraped site's locale so that
// citation access dates line up with the day the pages were read,
// regardless of where the scraper itself runs.
func Now() time.Time {
	return time.Now().In(Location)
}

// AccessDate renders a time the way wikipedia citation templates
// expect their access-date parameter.
func AccessDate(t time.Time) string {
	return t.Format("2006-01-02")
}
