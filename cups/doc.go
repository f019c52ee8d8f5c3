// Package cups implements CUPS/IPP client operations on top of the
// ipp codec and ipp/transport: printer enumeration, print job
// submission, job queries and control, and printer move.
//
// A minimal client, logging to the console:
//
//	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
//	c := cups.New("http://localhost:631/", cups.WithLogger(log))
//
//	printers, err := c.GetPrinters(context.Background())
//	if err != nil {
//		log.Fatal().Err(err).Msg("listing printers")
//	}
//
//	f, err := os.Open("report.pdf")
//	if err != nil {
//		log.Fatal().Err(err).Msg("opening document")
//	}
//	defer f.Close()
//
//	job, err := c.PrintJob(context.Background(), printers[0].URI, cups.PrintJob{
//		Document: f,
//		JobName:  "report",
//		Copies:   2,
//	})
//	if err != nil {
//		log.Fatal().Err(err).Msg("submitting job")
//	}
//	log.Info().Int("job-id", job.JobID).Msg("submitted")
package cups
