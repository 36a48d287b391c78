package cli

var (
	ServeUntilDone = serveUntilDone
	PublicAddr     = publicAddr
	PrintBanner    = printBanner
)
