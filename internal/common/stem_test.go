package common_test

import (
	"fmt"

	"tag-reviver/internal/common"
)

func ExampleStem() {
	st := common.NewStem("id", nil)
	fmt.Println(st.Next(), st.Next(), st.Next())

	st = common.NewStem("val", map[string]struct{}{"val2": {}})
	fmt.Println(st.Next(), st.Next(), st.Next())

	taken := map[string]struct{}{}
	fmt.Println(common.NewStem("Name", taken).Claim(), common.NewStem("Name", taken).Claim())

	// Output:
	// id1 id2 id3
	// val1 val3 val4
	// Name Name1
}
