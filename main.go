// CleanStream resolves community-contributed content flags into skip
// intervals for media players.
package main

import "github.com/ameen-roayan/stremio-cleanstream/cmd"

func main() {
	cmd.Execute()
}
