package polya

import "github.com/op/go-logging"

var log = logging.MustGetLogger("polya")

// importers see warnings only until they configure a backend of their own
func init() {
	logging.SetLevel(logging.WARNING, "polya")
}
