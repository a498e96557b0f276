package observability

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
)

// InstrumentAWSClients attaches X-Ray tracing middleware to every AWS SDK
// client built from cfg. Called once during container initialization when
// tracing is enabled.
func InstrumentAWSClients(cfg *aws.Config) {
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)
}
