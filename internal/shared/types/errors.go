package types

import "errors"

var (
	ErrNoInputFile    = errors.New("no input file specified. Use --input or set input_file in a config file")
	ErrNoRecordsFound = errors.New("the input file contains no utilization records")
)
