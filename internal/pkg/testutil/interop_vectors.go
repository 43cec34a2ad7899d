package testutil

// Interop vectors produced by the companion implementation. Keys are 1024 bit and only used in tests.
const (
	// InteropPKCS8PublicKey is the SPKI public key matching InteropPKCS8PrivateKey.
	InteropPKCS8PublicKey = "MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQCLjXCd0y8wucMlQDd9S9cFeCA0H/l/prnouwWgGOEzoaS1gBK4IK0AAiNd7mz8EP+4m9DqeaGW63ei3aws43qV1lDpsVepfJ2PPe/5VBx7uAKKGqPU+IlNP6EBWUWMMsrCS/oh6LHucCyLah5YhyXOju1cZTfqQ1VFWsbZupmUaQIDAQAB"

	// InteropPKCS8PrivateKey is a PKCS#8 private key with long form lengths.
	InteropPKCS8PrivateKey = "MIICdwIBADANBgkqhkiG9w0BAQEFAASCAmEwggJdAgEAAoGBAIuNcJ3TLzC5wyVAN31L1wV4IDQf+X+muei7BaAY4TOhpLWAErggrQACI13ubPwQ/7ib0Op5oZbrd6LdrCzjepXWUOmxV6l8nY897/lUHHu4Aooao9T4iU0/oQFZRYwyysJL+iHose5wLItqHliHJc6O7VxlN+pDVUVaxtm6mZRpAgMBAAECgYAKHDkodgBZO1wT+s8KWNA/KTDMFfTxdpbJcaM6shK+tttD+v9gL53Y/k6po3hp2qFsMn20PxOh53VHa1/p8KEU1j+DwLbNC5eIp7/5ZNWwftQTSHBCqSyr+7rE0i6Gcst1qT0ioKUS1fOHIZSt0gfBOf1eEzhpLDT1o0QgY98cAQJBANrWFNml89xHZQAUmXvrcC/vzmbfktWuHpTP4gRoURp4Uh7j07xD7dVN/gbk42K70VWCTWTRSARApA9IfjACuqECQQCjQH4hh/2H70b23h3OUfiGUSnhupoNUz93xTsaBYbwiTGYH81Sno5aQbO3j8H9gi8qZanSHRG24MUVeyQdRYzJAkBHJ0aeQgxZeklHzmrdVP8kRwfIgTdgDP5aioFFx5lfTvH8oz1MQJYLPhGzsiaRCtqUwApkFnwhDdeKNJr7B1ghAkEAm/knSTQbp/+VxpGK2q/4iaQMJs3ZF7gc4HrBL+ht92ysxJJF4pT4nwU9BrlD98ik9ZXyPXxmi1qPEin35Dup+QJBAMQsiQwjjTGoVJpNrXoxHbSwgrHhJrgP4HUX2XKmbjCfem8dWdU93G4/VDFUDcNJyd33xDOHispMoe+rHwgG0xQ="

	// InteropPKCS8PrivateKeyAsPKCS1 is the RSAPrivateKey embedded in InteropPKCS8PrivateKey.
	InteropPKCS8PrivateKeyAsPKCS1 = "MIICXQIBAAKBgQCLjXCd0y8wucMlQDd9S9cFeCA0H/l/prnouwWgGOEzoaS1gBK4IK0AAiNd7mz8EP+4m9DqeaGW63ei3aws43qV1lDpsVepfJ2PPe/5VBx7uAKKGqPU+IlNP6EBWUWMMsrCS/oh6LHucCyLah5YhyXOju1cZTfqQ1VFWsbZupmUaQIDAQABAoGAChw5KHYAWTtcE/rPCljQPykwzBX08XaWyXGjOrISvrbbQ/r/YC+d2P5OqaN4adqhbDJ9tD8Toed1R2tf6fChFNY/g8C2zQuXiKe/+WTVsH7UE0hwQqksq/u6xNIuhnLLdak9IqClEtXzhyGUrdIHwTn9XhM4aSw09aNEIGPfHAECQQDa1hTZpfPcR2UAFJl763Av785m35LVrh6Uz+IEaFEaeFIe49O8Q+3VTf4G5ONiu9FVgk1k0UgEQKQPSH4wArqhAkEAo0B+IYf9h+9G9t4dzlH4hlEp4bqaDVM/d8U7GgWG8IkxmB/NUp6OWkGzt4/B/YIvKmWp0h0RtuDFFXskHUWMyQJARydGnkIMWXpJR85q3VT/JEcHyIE3YAz+WoqBRceZX07x/KM9TECWCz4Rs7ImkQralMAKZBZ8IQ3XijSa+wdYIQJBAJv5J0k0G6f/lcaRitqv+ImkDCbN2Re4HOB6wS/obfdsrMSSReKU+J8FPQa5Q/fIpPWV8j18ZotajxIp9+Q7qfkCQQDELIkMI40xqFSaTa16MR20sIKx4Sa4D+B1F9lypm4wn3pvHVnVPdxuP1QxVA3DScnd98Qzh4rKTKHvqx8IBtMU"

	// InteropPKCS1PublicKey is the SPKI public key matching InteropPKCS1PrivateKey.
	InteropPKCS1PublicKey = "MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQCCjpncvOtMHIp4Bv9sX3JMoSlYKCWsaHdDZ5Oi+QybEDQQlk+MS0wDv+CodsbBFkFwkYcScJzXO/2tM7zVLJR71H761u/woIC5WiBivEMfF6paD0oUM/M440N6ek9ZVONd+W29tnsA+pRVPhN8JhIJaWpuB//UoROXp0PWMjfiZwIDAQAB"

	// InteropPKCS1PrivateKey is a bare RSAPrivateKey.
	InteropPKCS1PrivateKey = "MIICXAIBAAKBgQCCjpncvOtMHIp4Bv9sX3JMoSlYKCWsaHdDZ5Oi+QybEDQQlk+MS0wDv+CodsbBFkFwkYcScJzXO/2tM7zVLJR71H761u/woIC5WiBivEMfF6paD0oUM/M440N6ek9ZVONd+W29tnsA+pRVPhN8JhIJaWpuB//UoROXp0PWMjfiZwIDAQABAoGAd/oYBzRNfzpTPY4guDTWUvlfhzYNuOyffP/4OrJoFS/EyOF45NJlXqS8DdRpPhP3uzzhRd7bIyhsLPj4tWYsZGuyA+GyOjF9Zj/rOWPU1rP4qWSFQ1p9pHvugoi3yt9I1bIqggvUcXk3hdnuVdfSjQE1fY5lpXZvGKB6zNpqZVECQQDuWimYnFgc/1BJtSfCwtKiN0eFMw8S4gTyzWttwOtFxBsHo7Q1l5Xvk564kwZXr2CuOXahrJaDjYm7vNzfoy6bAkEAjDk9QynP8YXQsISPB/X/PxYYpZbAti85sk3JPVO2jb3tAkxCYmIxUg1xgpogaOupqKxeQe83gD8742+5xSXSJQJASuFegghUEkAPjChyZlhobffp6ynASZFiNplcb62U/GUAjOTcH54Qx6Rbz+a4rmF1gSaiY2ZiHtAffjB2P3f3kwJASBx7k9mh1ZwyeUSCZd6tOB096ZJAYrCgpEB6eC5f2D7O7vqWvQ+wO3ksYbSvbCWdZ1/VTWUfDrX2L31adLeBfQJBALGYWVO6Ksv72k1vbSywhLYOKVe3JLZiZgFUNvKLh0g1Tfm1pK29veSSGey8HIkGtI04E6tgQVLx3adZSxjdnFI="

	// InteropPKCS1PrivateKeyAsPKCS8 is InteropPKCS1PrivateKey wrapped in a PrivateKeyInfo.
	InteropPKCS1PrivateKeyAsPKCS8 = "MIICdgIBADANBgkqhkiG9w0BAQEFAASCAmAwggJcAgEAAoGBAIKOmdy860wcingG/2xfckyhKVgoJaxod0Nnk6L5DJsQNBCWT4xLTAO/4Kh2xsEWQXCRhxJwnNc7/a0zvNUslHvUfvrW7/CggLlaIGK8Qx8XqloPShQz8zjjQ3p6T1lU4135bb22ewD6lFU+E3wmEglpam4H/9ShE5enQ9YyN+JnAgMBAAECgYB3+hgHNE1/OlM9jiC4NNZS+V+HNg247J98//g6smgVL8TI4Xjk0mVepLwN1Gk+E/e7POFF3tsjKGws+Pi1Zixka7ID4bI6MX1mP+s5Y9TWs/ipZIVDWn2ke+6CiLfK30jVsiqCC9RxeTeF2e5V19KNATV9jmWldm8YoHrM2mplUQJBAO5aKZicWBz/UEm1J8LC0qI3R4UzDxLiBPLNa23A60XEGwejtDWXle+TnriTBlevYK45dqGsloONibu83N+jLpsCQQCMOT1DKc/xhdCwhI8H9f8/FhillsC2LzmyTck9U7aNve0CTEJiYjFSDXGCmiBo66morF5B7zeAPzvjb7nFJdIlAkBK4V6CCFQSQA+MKHJmWGht9+nrKcBJkWI2mVxvrZT8ZQCM5NwfnhDHpFvP5riuYXWBJqJjZmIe0B9+MHY/d/eTAkBIHHuT2aHVnDJ5RIJl3q04HT3pkkBisKCkQHp4Ll/YPs7u+pa9D7A7eSxhtK9sJZ1nX9VNZR8OtfYvfVp0t4F9AkEAsZhZU7oqy/vaTW9tLLCEtg4pV7cktmJmAVQ28ouHSDVN+bWkrb295JIZ7LwciQa0jTgTq2BBUvHdp1lLGN2cUg=="

	// InteropMessage is the 16 byte message the signatures and the ciphertext below were made over.
	InteropMessage = "kolOt/LYqkhf/RZu6aJcIA=="

	// InteropCiphertext is InteropMessage encrypted with InteropPKCS1PublicKey.
	InteropCiphertext = "a6CIZzAPpzaDysCOE9X5FYp723lsTRia/GVDmU4yyhcKaFX2iBICfVwK5gakKK+NgTQ4veMu0l3wpIHM+eRA+Q6zrxCYjE8tkH1O4Jbxcvx4Nai4QP0JqCXDXNpxJMccKhqyNZ01uBq1RjJ++ATkMt66rt5DMW4pLtToh7nLjhg="

	// InteropSignatureSHA256 signs InteropMessage with InteropPKCS8PrivateKey over SHA-256.
	InteropSignatureSHA256 = "VnEka0wYeYmaG45qW7+RTPH+prTO9ryxrtqyAwpoZOymeQGJTPfkmm+Ti16UJPZetYR1LF+ETQ++XAkuTQIqhu4sgXyuhw4/TIYyMDzaEuEDOciwvJLiyC73E0Q4jXQx6kT8o+65Ki9h4LPxjjr8tOc+/r3U1uhute8/QWWYiuA="

	// InteropSignatureSHA1 signs InteropMessage with InteropPKCS1PrivateKey over SHA-1.
	InteropSignatureSHA1 = "RvxmCkUxhtSPLss712C2vH7jpXaV82QXDe/e9EaclgWuVPEliDPmUkwg20PfG5d/xM0l3LAEexHAUWD3svg6HTWo9zw7/l+fYxtkbv59i8Uz7r5Y+j3HVaHKevFEw2Z34PHbiPXVNYBRE/4Qzl8wLT2ZSLzo50yBBFziD4LgvtU="

	// InteropAESPlaintext encrypted under the MD5 digest of InteropAESPassword yields InteropAESCiphertext.
	InteropAESPlaintext  = "10005154"
	InteropAESPassword   = "123456"
	InteropAESCiphertext = "v8dUhK9k1+uBnFJjlNtcGg=="
)
