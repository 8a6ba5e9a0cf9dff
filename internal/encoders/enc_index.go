package encoders

import (
	"fmt"
)

type encoderFactory = func() (Encoder, error)

// Index of supported color modes, each encoder should register itself
var registeredEncoders = make(map[ColorMode]encoderFactory, 2)

//EncoderService creates instances of encoders
type EncoderService struct {
}

//NewEncoderService creates an encoder factory
func NewEncoderService() Service {
	return &EncoderService{}
}

//NewEncoder creates an instance of an encoder for the selected color mode
func (*EncoderService) NewEncoder(mode ColorMode) (Encoder, error) {
	factory, found := registeredEncoders[mode]
	if !found {
		return nil, fmt.Errorf("color mode %v not supported", mode)
	}
	return factory()
}

//Supports returns a boolean indicating if the color mode is supported
func (*EncoderService) Supports(mode ColorMode) bool {
	_, found := registeredEncoders[mode]
	return found
}
