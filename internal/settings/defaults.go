package settings

const (
	defaultProjectIDPattern       = `^GCF-\d{4}-\d{3}$`
	defaultSampleSheetFilename    = "SampleSheet.csv"
	defaultSubmissionFormFilename = "Sample-Submission-Form.xlsx"
	defaultCustomerSheet          = 0
	defaultCustomerSkipRows       = 14
	defaultLabSheet               = 2
	defaultFastqDir               = "data/raw/fastq"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns Settings populated with repository defaults: the GCF
// project pattern and the facility's sequencer fleet.
func Default() Settings {
	return Settings{
		Project: Project{
			IDPattern: defaultProjectIDPattern,
		},
		Sequencers: map[string]string{
			"NB501038":  "NextSeq 500",
			"SN7001334": "HiSeq 2500",
			"K00251":    "HiSeq 4000",
			"M02675":    "MiSeq NTNU",
			"M03942":    "MiSeq StOlav",
			"M05617":    "MiSeq SINTEF",
		},
		SampleSheet: SampleSheet{
			Filename: defaultSampleSheetFilename,
		},
		Submission: Submission{
			FormFilename:     defaultSubmissionFormFilename,
			CustomerSheet:    defaultCustomerSheet,
			CustomerSkipRows: defaultCustomerSkipRows,
			LabSheet:         defaultLabSheet,
		},
		Staging: Staging{
			FastqDir: defaultFastqDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
