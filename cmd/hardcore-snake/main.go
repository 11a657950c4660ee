package main

import "github.com/ArQuel/hardcore-snake/internal/game"

func main() {
	game.RunDesktop()
}
