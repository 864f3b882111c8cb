package voigtlander

import (
	"lenswiki/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lenswiki.lib.scrapers.voigtlander")

// SetRestyInstrumentOutput enables on-disk http message dumps for
// this client's traffic.
func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, tracer, out)
}
