package game

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[bounce] ", log.Ldate|log.Ltime)
