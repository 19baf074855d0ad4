package integrations_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/ghinsight/pkg/integrations"
)

func ExampleURLEncode() {
	// URL-encode search qualifiers for API queries
	fmt.Println(integrations.URLEncode("octo in:name"))
	fmt.Println(integrations.URLEncode("a+b"))
	// Output:
	// octo+in%3Aname
	// a%2Bb
}

func ExampleRateLimitError() {
	err := error(&integrations.RateLimitError{Reset: time.Unix(1700000000, 0)})
	fmt.Println(errors.Is(err, integrations.ErrRateLimited))
	fmt.Println(err)
	// Output:
	// true
	// rate limit exceeded: resets at 2023-11-14T22:13:20Z
}
