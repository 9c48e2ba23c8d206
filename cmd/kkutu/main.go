// Command kkutu suggests and plays words in the KKuTu word-chain game.
package main

import "github.com/nunnu1028/kkutu-korea-hack/internal/cli"

func main() {
	cli.Execute()
}
