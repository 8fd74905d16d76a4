package pyx

const (
	defaultServerName = "pyx"

	strCRLF = "\r\n"

	hdrConnection    = "Connection"
	hdrContentLength = "Content-Length"
	hdrContentType   = "Content-Type"

	connKeepAlive = "keep-alive"
)
