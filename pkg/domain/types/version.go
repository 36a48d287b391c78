package types

// Version is the build version of gt-helloworld.
// Overridden at build time with:
//
//	go build -ldflags "-X github.com/m-mizutani/gt-helloworld/pkg/domain/types.Version=v1.2.3"
var Version = "dev"

// ServiceName identifies the service in health payloads and response headers
const ServiceName = "gt-helloworld"

// PoweredBy is the value of the X-Powered-By header attached to every response
const PoweredBy = "GT-HelloWorld"
