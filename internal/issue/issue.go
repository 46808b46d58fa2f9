// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	UnsupportedScopeId Id = iota + 1
	HomeRelativePathId
	ConfigLoadFailedId
)

type MarkdownMsg string

// Issue is a catalog entry rendered when the CLI hits a known failure
// mode. The markdown body explains the failure and what to do about it.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render formats the issue's markdown for terminal display using the
// given glamour style (e.g. "dark", "light").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	unsupportedScopeIssue = &Issue{
		id: UnsupportedScopeId,
		mdMsg: `
# Unsupported configuration scope!

The scope you specified is not one gitscope understands.

## Recognized scopes:
- **system**: machine-wide configuration (` + "`/etc/gitconfig`" + ` or ` + "`<git install>\\etc\\gitconfig`" + `)
- **global**: per-user configuration (` + "`~/.gitconfig`" + `, ` + "`$XDG_CONFIG_HOME/git/config`" + `)
- **local**: repository configuration (` + "`.git/config`" + `)

## Things you can try:
- Check for typos in the --scope flag
- Omit --scope to resolve from the ambient process environment`,
	}

	homeRelativePathIssue = &Issue{
		id: HomeRelativePathId,
		mdMsg: `
# Home-relative path not allowed!

Expanding a ` + "`~/`" + `-relative path needs a home directory, and the current
scope resolved without one.

The **local** scope never has a home directory: repository configuration is
always addressed by paths relative to the repository itself.

## Things you can try:
- Use an absolute path instead of a ` + "`~/`" + `-relative one
- Expand against the global scope:
~~~
$ gitscope expand "~/config" --scope ""
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the gitscope configuration file.

## Configuration file locations:
- Linux: ~/.config/gitscope/config.toml
- macOS: ~/Library/Application Support/gitscope/config.toml
- Windows: %APPDATA%\gitscope\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ gitscope config init
~~~

- Check the TOML syntax
- Remove the config file to use defaults`,
	}

	issues = map[Id]*Issue{
		unsupportedScopeIssue.Id(): unsupportedScopeIssue,
		homeRelativePathIssue.Id(): homeRelativePathIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		vals = append(vals, i)
	}
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
