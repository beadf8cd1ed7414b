package extmocks

//go:generate mockgen -destination=readseekcloser_mock.go -package=extmocks -mock_names ReadSeekCloser=ReadSeekCloserMock io ReadSeekCloser
