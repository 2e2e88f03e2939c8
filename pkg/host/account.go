// Package host reads facts about the machine and the account running the
// provider.
package host

import (
	"fmt"
	"os/user"
	"strconv"
	"strings"
)

// AccountInfo names the effective user.
type AccountInfo struct {
	Username string
	FullName string
}

// lookupUser allows tests to stub the passwd lookup.
var lookupUser = user.LookupId

// Account returns the user name and display name of uid. The display name is
// the first comma separated GECOS field and may be empty.
func Account(uid int) (AccountInfo, error) {
	u, err := lookupUser(strconv.Itoa(uid))
	if err != nil {
		return AccountInfo{}, fmt.Errorf("looking up uid %d: %w", uid, err)
	}
	name, _, _ := strings.Cut(u.Name, ",")
	return AccountInfo{Username: u.Username, FullName: name}, nil
}
