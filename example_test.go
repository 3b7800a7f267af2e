package laplacian_test

import (
	"bytes"
	"fmt"

	"github.com/vearutop/laplacian"
)

func ExampleDecode() {
	data := append([]byte("P6\n2 1\n255\n"), 10, 20, 30, 40, 50, 60)

	img, err := laplacian.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	fmt.Println(img.Width, img.Height, img.At(0, 0))
	// Output: 2 1 {10 20 30}
}

func ExampleApplyLaplacian() {
	img := laplacian.NewImage(3, 3)
	img.Set(1, 1, laplacian.Pixel{R: 255, G: 255, B: 255})

	out, _, err := laplacian.ApplyLaplacian(img, 4)
	if err != nil {
		return
	}

	fmt.Println(out.At(1, 1), out.At(0, 0))
	// Output: {255 255 255} {0 0 0}
}

func ExampleProcessFiles() {
	jobs := []laplacian.Job{
		{In: "file1.ppm", Out: "laplacian1.ppm"},
		{In: "file2.ppm", Out: "laplacian2.ppm"},
	}

	total, _ := laplacian.ProcessFiles(jobs)
	_ = total
}
