// Package robot implements the gRPC transport for the robot service.
//
// The server validates requests and adapts the generated RobotService API
// to a business-service interface.
package robot

//go:generate protoc -I ../../../../api --go_out=../../../.. --go_opt=module=github.com/oshokin/robot-alarm-clock --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/oshokin/robot-alarm-clock robot/v1/robot.proto
